// Package pruning drops low-magnitude weights after hashing, and rounds
// the survivors to the precision the JSON artifact contract requires
// (spec §3, §4.8).
package pruning
