// Package content holds the static configuration a landing page is built
// from: navigation, hero copy, marquee words, article and testimonial
// records, call-to-action band, footer and palette. Values are plain data.
// Default returns the embedded AINewsBox document and LoadFile overlays a
// YAML document on top of it.
package content
