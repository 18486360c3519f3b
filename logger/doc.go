// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for the emulator. Logging is
// always gated by a Permission, which allows a component (the CPU for example)
// to decide for itself whether its log entries are wanted.
//
// Consecutive entries with identical tag and detail are folded into one entry
// and a repeat count is appended to the output:
//
//	CPU: unsupported instruction (0x02) at (0x0010) (repeat x3)
package logger
