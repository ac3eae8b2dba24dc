// Package sign provides ed25519 signing over package archives and the
// persistence of key pairs. Private keys are stored as hex-encoded
// 32-byte seeds, public keys as hex-encoded 32-byte points, signatures
// as raw 64-byte sidecar files.
package sign
