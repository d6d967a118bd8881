// Package core defines the value types shared by every spantree package:
// node identifiers, weighted edges and directed node pairs.
//
// Nodes are implicit. A graph with nodeCount nodes addresses them as the
// integers 0..nodeCount-1; no vertex object exists.
//
// Edges are immutable triples (Source, Destination, Weight). They describe an
// undirected connection but keep the orientation they were created with,
// because the selection engine records connectivity as directed pairs:
//
//	0───1        Edge{0,1,5} and Edge{1,0,5} name the same link,
//	 \  │        yet Pair{0,1} and Pair{1,0} are different facts.
//	  \ │
//	   2
//
// The sentinel edge (-1,-1,-1) marks an unspecified edge. It is kept for
// callers that need a zero value distinct from node 0; selection results
// never carry it (see kruskal.Result).
package core
