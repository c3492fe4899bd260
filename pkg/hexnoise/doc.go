/*
Package hexnoise provides a reversible noise-padded hex encoding for lower sensitivity text and data.

Note that this is NOT encryption, since it is trivially reversible and the only parameter is stored in the output.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
It's useful for disguising the length and character distribution of a payload from casual observation.

# How it works:

Each input byte is rendered as four hex nibbles, as if it were the low byte of a 16-bit value: 0x41 becomes "0041".
After every one of those nibbles, key random noise nibbles are inserted.
The key itself is split into its two hex nibbles, and placed at the very start and very end of the output.

	key=2, data="A"  ->  "0" + "0xx" "0xx" "4xx" "1xx" + "2"

Decoding recovers the key from the first and last characters, then picks out every (key+1)th character.
Noise characters are skipped by position and never inspected.

# General guidelines:
  - The encoded length is always 2 + len(data)*4*(key+1), see EncodedLen.
  - A key of 0 produces no noise at all, which is just a framed hex dump.
  - Noise is drawn from a Source. The default source is not cryptographic, and doesn't need to be.
  - Use NewSeededSource with NewEncoder when repeatable output is needed.
*/
package hexnoise
