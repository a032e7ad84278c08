// Package marquee builds the text streams used by looping marquee bands. A
// band pads its label into a stream long enough to fill the viewport and
// exposes two identical copies so the presentation layer can translate the
// container by half its width without a visible seam.
package marquee
