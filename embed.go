package folio

import "embed"

// EmbeddedAssets contains the browser scripts shipped with the server:
// site.js (theme, menus, testimonial presence) and motion.js (scroll-driven
// transforms described by data-motion attributes).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
