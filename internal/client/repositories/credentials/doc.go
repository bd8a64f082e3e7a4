// Package credentials provides access to the local credential store: a JSON
// object keyed by username whose entries hold an encrypted API key.
//
//	{
//	  "alice": {"apikey": "<salt>$<iv>$<ciphertext>"}
//	}
//
// The shell only reads the store (see Lookup). Records are written by the
// provisioning tool through Repository.Set, which keeps any other fields a
// user entry may carry.
package credentials
