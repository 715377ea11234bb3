// Package donate extracts structured records from social-media data export
// archives so that participants can review them and donate them to research.
//
// An export archive is a zip bundle of JSON or HTML files whose layout varies
// by platform, export language and version. Extractors locate their target
// files by path suffix, decode them and always return a well-formed table,
// even when the data they look for is missing or partially broken.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or domain (e.g., zip/, goquery/, sqlite/,
// tiktok/, instagram/).
package donate
