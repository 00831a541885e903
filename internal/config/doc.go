// Package config resolves the runtime configuration of the Pathways web
// application: database credentials, base URL and environment flags.
//
// A configuration is produced in one of two ways:
//  1. [Resolver.Resolve] maps an environment name (LOCAL, TESTING or
//     PRODUCTION) to a built-in value set, reading environment variables
//     through an injected [EnvProvider].
//  2. [LoadFromFile] reads the same fields from a JSON file keyed by
//     environment name.
//
// [GetConfiguration] chooses between the two from APP_ENV, CONFIG and
// command-line flags. Every error returned wraps [ErrConfiguration].
package config
