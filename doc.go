// Package ed25519core implements the Curve25519 Diffie-Hellman function
// (X25519) and the Ed25519 signature scheme on top of it.
//
// The field and scalar arithmetic live in internal packages and use a
// ten-limb radix-2^25.5 representation for field elements and a 21-bit-limb
// representation for scalars modulo the group order l, following the
// classic ref10-style construction: fixed-time carry chains, a constant-time
// conditional swap, and a fixed addition chain for field inversion.
//
// Ed25519 base-point scalar multiplication and signature verification build
// on filippo.io/edwards25519 for the Edwards group arithmetic, since this
// package's own scope stops at the field and scalar layers and the
// Montgomery ladder.
package ed25519core
