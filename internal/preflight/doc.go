// Package preflight provides readiness checks for the filesystem paths
// tickgen writes to.
//
// The output writer runs CheckDirectoryAccess on the output directory before
// taking its lock, and "tickgen config validate" prints RunAll's results.
package preflight
