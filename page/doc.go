/*
Package page provides fixed-capacity slot pages and the index arithmetic
which maps global 1-based positions onto them.

A page stores positions 1…Len(). Each position holds either a value or a
hole. Holes result from removals and never shift other positions.

Address translation assumes a page capacity which is a power of two:

	pageID = ((i-1) div C) + 1
	offset = ((i-1) mod C) + 1

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package page
