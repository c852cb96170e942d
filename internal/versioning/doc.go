// Package versioning resolves the release version substituted into the
// documentation pages.
//
// StaticResolver returns a configured value. GitTagResolver reads the tags of
// a local repository and returns the highest semantic version among those
// matching a glob, without the leading "v".
package versioning
