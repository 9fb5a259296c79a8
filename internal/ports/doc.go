// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the taskrun CLI). Capability ports are implemented
// by outbound adapters and called by the application layer; each wraps exactly
// one external library or service.
package ports
