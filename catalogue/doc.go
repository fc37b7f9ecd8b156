// This file is part of Cycletrace.
//
// Cycletrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cycletrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cycletrace.  If not, see <https://www.gnu.org/licenses/>.

// Package catalogue lists the traces available in a directory.
//
// If the directory contains a manifest file, called traces.json, the
// manifest lists the trace files in the order they should be presented.
// Otherwise every file in the directory with the .json extension is listed,
// in filename order.
//
// Each listed file is peeked to count the number of cycles it contains.
// Files are peeked concurrently. A file that cannot be peeked is still
// listed, with the error recorded in its Entry.
package catalogue
