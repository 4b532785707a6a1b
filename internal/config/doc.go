// Package config loads the optional HCL pipeline configuration and resolves
// it against built-in defaults. Environment variables are exposed to the
// configuration as the `env` map, so deployments can write
//
//	pipeline {
//	  ledger_path = env.DOCSIFT_LEDGER
//	}
//
// without templating the file.
package config
