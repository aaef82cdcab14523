// Package writers serializes frequency tables.
//
// The TSV layout is one "<kmer>\t<count>" line per entry, in the table's
// iteration order, with no header row and no trailing summary.
package writers
