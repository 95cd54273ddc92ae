// Package storage declares persistence interfaces for web-owned data.
//
// Content is read from the headless CMS; the web service only stores what
// visitors submit through its forms.
package storage
