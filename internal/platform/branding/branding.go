// Package branding holds the site identity shared by layouts and fallbacks.
package branding

// AppName is the public site name used in titles and chrome.
const AppName = "AI Co-Pilot"

// Tagline is the site description and the fallback hero headline.
const Tagline = "Intelligent systems that augment human capability"
