// Package did implements the restricted subset of Decentralised Identifiers (DIDs) used by atproto: only the did:web and did:plc methods, with a reduced identifier syntax.
//
// This is syntax validation only, not routines for resolving a DID to its DID document or verifying it against an account.
//
// The DID specification is available at https://www.w3.org/TR/did-core and the atproto subset is described at https://atproto.com/specs/did
package did
