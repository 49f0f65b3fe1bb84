// Package driving defines the driving (inbound) ports of the hexagon.
//
// Driving ports are the interfaces external actors (CLI, TUI, MCP
// server) use to invoke the core services.
package driving
