// Package registry stores per-module hook registrations for the host to
// query at event dispatch time.
//
// Each extension module maps to one HookSet, created on first access and
// reused for the lifetime of the Registry. Hook lists are append-only and
// preserve registration order, which is also invocation order. Entries are
// never removed individually; a host that unloads or reloads extensions en
// masse calls Reset and rebuilds the registry wholesale.
//
// # Concurrency
//
// The registry defines no locking. Registration happens during
// single-threaded module load, strictly before dispatch begins; concurrent
// registration is out of contract. Lookups and accessors are read-only and
// may run concurrently with each other, but not with registration. Hosts
// that load extensions late or dynamically must synchronize access
// themselves.
package registry
