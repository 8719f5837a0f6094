// Package webcache provides a disk-backed cache of fetched response bodies.
// Each URL maps to one JSON file named by the MD5 hash of the URL, holding
// the fetch timestamp and the raw body. Entries expire after a fixed
// freshness window.
package webcache
