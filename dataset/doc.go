// Package dataset reads colony inputs from plain text files.
//
// Distances are a square, tab-delimited matrix, one row per line:
//
//	0	12	7
//	12	0	5
//	7	5	0
//
// Cells are parsed with strconv.ParseFloat, so "Inf" marks a missing road and
// integer files load unchanged. Lines starting with '#' are comments.
//
// City labels are one name per line, in matrix order. Surrounding blanks and
// empty lines are ignored.
package dataset
