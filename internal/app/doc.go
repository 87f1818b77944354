// Package app wires rosterdeck together: configuration, logging, the
// preference cache, the roster store and its provider scope, the simulated
// directory client, and the UI.
package app
