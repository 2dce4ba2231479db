// Command seg2d-intersect loads a barrier segment file and a query
// segment file (one segment per line, x1,y1,x2,y2), reports the number
// of queries that cross no barrier as computed by both the scalar
// reference and the chunked prequery scan, and fails if they disagree.
// With -bench-iters it also times repeated passes over the query set.
package main
