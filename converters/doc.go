// Package converters reads correlation matrices from and writes filtered
// graphs to the file formats the topcorr CLI supports.
//
// Matrices
//
//   - CSV: n rows of n numbers. With a header, the first row holds the n labels.
//   - JSON / YAML: a MatrixDocument ({"labels": [...], "matrix": [[...]]});
//     labels are optional.
//
// Graphs
//
//   - JSON / YAML: a GraphDocument with run ID, method, nodes, edges and
//     summary totals.
//   - CSV: one edge per line, "u,v,source,target,weight", with a header row.
//
// Every reader returns a validated *corr.Matrix; parse failures wrap
// ErrParse, shape and value failures wrap corr.ErrInvalidMatrix.
package converters
