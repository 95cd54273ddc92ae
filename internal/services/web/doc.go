// Package web serves the public AI Co-Pilot marketing site.
//
// Pages are rendered server-side from content held in the headless CMS. When
// the content source is not configured the site still starts and every page
// renders setup instructions or its missing state instead of failing.
package web
