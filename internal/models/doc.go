// package models defines the data model for the album drop tracker.
package models
