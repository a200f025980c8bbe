// Package product models catalog products as seen by the ordering core: price,
// stock on hand and the active (not soft-deleted) flag. Stock is the only state the
// core mutates.
package product
