// Package settingsx provides precedence-controlled merging of shared default
// settings into an application's configuration.
//
// # Overview
//
// A shared library ships its default JSON settings embedded in its artifact
// (an embed.FS). The consuming application builds an ordered list of
// configuration sources where later entries override earlier entries on key
// collision, and settingsx inserts the library's embedded sources at exactly
// the positions that let the application's own files keep the last word.
//
// # Features
//
//   - Ordered source list with stable insert, move, and dedup operations
//   - Embedded sources resolved by (owner, resource name) through a registry
//   - Deterministic last-wins deep merge into a flat key/value snapshot
//   - Type-safe struct binding via env/envDefault tags with optional validation
//
// # Usage
//
//	reg := settingsx.NewRegistry()
//	reg.Register("acme", acmeDefaults) // acmeDefaults is an embed.FS
//
//	list := settingsx.NewList(settingsx.Options{Logger: logger, Resolver: reg})
//	list.AddJSONFile("appsettings.json")
//	list.AddJSONFile("appsettings.Development.json")
//	if err := list.AddSharedSettings("acme", "Development", true); err != nil {
//		return err
//	}
//
//	var cfg AppConfig
//	if err := list.Bind(ctx, &cfg); err != nil { return err }
//
// # Stability
//
// The resource naming convention "<owner>.appsettings.json" and
// "<owner>.appsettings.<environment>.json" is fixed for compatibility.
package settingsx
