// package repositories provides the persistence layer for the drop tracker:
// a small set of storage accessor primitives plus repositories for drops and
// users built on them.
package repositories
