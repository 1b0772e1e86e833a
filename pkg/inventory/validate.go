package inventory

import (
	"tfinv/pkg/logger"
)

// Validate checks the structural invariants of a built tree. Unlike
// Build, which tolerates empty provisioning output, validation is
// opt-in and stricter: a webservers group with zero hosts fails.
// Findings are emitted as log lines; the boolean is the only result.
func Validate(inv *Inventory) bool {
	if inv == nil || inv.All == nil {
		logger.Error("Missing required key in inventory: all")
		return false
	}

	web := inv.Webservers()
	if web == nil || web.Hosts == nil || web.Hosts.Len() == 0 {
		logger.Warn("No webserver hosts found in inventory")
		return false
	}

	for _, name := range web.Hosts.Keys() {
		v, _ := web.Hosts.Get(name)
		record, ok := v.(*Dict)
		if !ok || !record.Has("ansible_host") {
			logger.Errorf("Host %s missing ansible_host", name)
			return false
		}
	}

	logger.Info("Inventory validation passed")
	return true
}
