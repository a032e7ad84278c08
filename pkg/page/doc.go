// Package page composes static site configuration, the current year and a
// resolved palette into the Model every renderer consumes. Marquee bands are
// padded and card lists are mapped here, once per render.
package page
