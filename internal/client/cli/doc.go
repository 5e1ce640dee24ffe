// Package cli implements the interactive terminal front end of the Hidden
// Haul storefront. The REPL plays the role pages play in a browser client:
// one long-lived process, one global session, commands as routes. Commands
// are thin fetch-then-render glue over the API client and the services
// layer; which commands are reachable follows the same role gating as the
// navigation surface.
package cli
