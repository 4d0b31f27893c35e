// Package keycodec converts raw 32-byte keys to and from their text forms.
//
// Public keys are meant to be read aloud or copied by hand, so they are
// written as a 24-word mnemonic from the 2048-word BIP-39 English
// dictionary. The last word carries an 8-bit checksum, which catches most
// transcription mistakes. Input is accepted in any letter case.
//
// Private keys are meant for exact file storage and are written as 64
// lowercase hexadecimal characters.
package keycodec
