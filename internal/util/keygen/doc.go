// Package keygen generates RSA key pairs for SSH authentication.
//
// Keys are produced in PEM format (private) and OpenSSH authorized_keys
// format (public). The public half is imported into EC2 when key pairs are
// generated locally instead of by the provider.
package keygen
