// Package hcl implements config.Loader for settings files written in HCL.
//
// A settings file holds plain top-level attributes only:
//
//	endpoint   = "https://jsonplaceholder.typicode.com/users"
//	timeout    = "10s"
//	log_level  = "info"
//	log_format = "json"
//
// Every attribute is optional. Unknown attributes and blocks are rejected so
// that typos surface instead of being silently ignored.
package hcl
