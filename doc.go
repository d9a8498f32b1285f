// Package sapdb is a unifying client for SAP HANA, Microsoft SQL Server and
// PostgreSQL behind one backend-agnostic surface: connect, query, procedure,
// disconnect. The backend is selected at connect time through
// ConnectionParams; queries are opaque strings passed through with the {db}
// schema token substituted and the generic `?` positional marker translated
// into each backend's native bound-parameter syntax where the driver
// requires it.
package sapdb
