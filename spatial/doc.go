/*
Package spatial reconstructs typed stations from the registry graph and
filters them against geographic rectangles.

Membership decisions look only at the reserved coordinate facts; the
subgraph copy takes every fact of a retained subject, so nothing attached to
a station travels separately from it.
*/
package spatial
