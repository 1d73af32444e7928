// Package datepicker serves server-side date picker instances over HTTP.
//
// Instances live in a bounded Store. The handler renders an instance with
// GET and applies browser events posted to its events route, answering
// with the re-rendered widget plus X-Datepicker-* headers carrying the
// committed value. The browser runtime (uikit.js) drives these routes.
package datepicker
