// Package random produces IV-grade random bytes from an ordered chain of sources.
//
// Secure sources are tried strictly in order and the first one that succeeds wins:
//
//  1. crypto/rand
//  2. Tink's subtle/random, when available
//  3. the getrandom(2) syscall in non-blocking mode (Linux only)
//
// When all of them fail, a non-cryptographic generator drawing from a fixed
// alphabet is used, but only if the caller explicitly allows it. Otherwise
// ErrUnavailable is returned.
package random
