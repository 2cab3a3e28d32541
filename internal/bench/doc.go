// Package bench compares sparsevec.Vector against a dense slice and a Go map
// on the same random ID set.
//
// Each store receives the same Payload per ID, is read back by ID and is
// checked to hold exactly the generated IDs. Add and read times, population
// and an estimate of the memory held are reported per store.
package bench
