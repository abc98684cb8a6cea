// Package social implements the social posting service: creating and
// scheduling posts, recording interactions, and computing per-post
// engagement analytics. Every write is validated before it reaches the
// repository.
package social
