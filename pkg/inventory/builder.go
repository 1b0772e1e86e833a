// Package inventory builds, validates, and persists an Ansible
// inventory tree projected from Terraform outputs.
package inventory

import (
	"fmt"
	"strings"

	"tfinv/pkg/logger"
	"tfinv/pkg/outputs"
)

// Config holds the builder's fixed settings and the fallbacks used
// when an output is absent. Immutable: Build never modifies it, and
// alternate sets can be passed in tests.
type Config struct {
	// Connection policy applied to every host.
	AnsibleUser       string
	PrivateKeyFile    string
	PythonInterpreter string
	SSHCommonArgs     string

	DatabasePort int
	AppPort      int

	// Fallbacks for outputs that may be absent.
	DefaultDatabaseName string
	DefaultDatabaseUser string
	DefaultProject      string
	DefaultEnvironment  string
	DefaultRegion       string

	// Feature flags emitted into the global vars.
	EnableSSL        bool
	EnableMonitoring bool
	EnableCloudwatch bool
	EnableFirewall   bool
	EnableFail2ban   bool
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		AnsibleUser:       "ubuntu",
		PrivateKeyFile:    "~/.ssh/id_rsa",
		PythonInterpreter: "/usr/bin/python3",
		SSHCommonArgs:     "-o StrictHostKeyChecking=no -o UserKnownHostsFile=/dev/null",

		DatabasePort: 5432,
		AppPort:      3000,

		DefaultDatabaseName: "appdb",
		DefaultDatabaseUser: "dbadmin",
		DefaultProject:      "myapp",
		DefaultEnvironment:  "dev",
		DefaultRegion:       "us-west-2",

		EnableSSL:        false,
		EnableMonitoring: true,
		EnableCloudwatch: true,
		EnableFirewall:   true,
		EnableFail2ban:   true,
	}
}

// Build projects Terraform outputs into an inventory tree. It is
// total: missing outputs are absorbed by defaults, so partial
// provisioning output still yields a usable tree.
func Build(out outputs.Outputs, cfg Config) *Inventory {
	logger.Info("Generating dynamic inventory...")

	publicIPs := out.StringList("instance_public_ips")
	privateIPs := out.StringList("instance_private_ips")
	instanceIDs := out.StringList("instance_ids")
	rdsEndpoint := out.String("rds_endpoint", "")
	s3Bucket := out.String("s3_bucket_name", "")
	lbDNS := out.String("load_balancer_dns", "")
	vpcID := out.String("vpc_id", "")
	dbName := out.String("rds_database_name", cfg.DefaultDatabaseName)
	dbUser := out.String("rds_username", cfg.DefaultDatabaseUser)

	project := out.MapString("environment_info", "project_name", cfg.DefaultProject)
	environment := out.MapString("environment_info", "environment", cfg.DefaultEnvironment)
	region := out.MapString("environment_info", "region", cfg.DefaultRegion)

	if len(publicIPs) == 0 {
		logger.Warn("No public IPs found in Terraform outputs")
	}

	globalVars := NewDict().
		Set("ansible_user", cfg.AnsibleUser).
		Set("ansible_ssh_private_key_file", cfg.PrivateKeyFile).
		Set("ansible_python_interpreter", cfg.PythonInterpreter).
		Set("host_key_checking", false).
		Set("ansible_ssh_common_args", cfg.SSHCommonArgs).
		Set("project_name", project).
		Set("environment", environment).
		Set("aws_region", region).
		Set("vpc_id", vpcID).
		Set("load_balancer_dns", lbDNS).
		Set("database_host", rdsEndpoint).
		Set("database_port", cfg.DatabasePort).
		Set("database_name", dbName).
		Set("database_username", dbUser).
		// Resolved by Ansible from the vault, never by this tool.
		Set("database_password", "{{ vault_db_password }}").
		Set("s3_bucket_name", s3Bucket).
		Set("app_port", cfg.AppPort).
		Set("app_user", cfg.AnsibleUser).
		Set("app_directory", "/opt/"+project).
		Set("log_directory", "/var/log/"+project).
		Set("enable_ssl", cfg.EnableSSL).
		Set("enable_monitoring", cfg.EnableMonitoring).
		Set("enable_cloudwatch", cfg.EnableCloudwatch).
		Set("enable_firewall", cfg.EnableFirewall).
		Set("enable_fail2ban", cfg.EnableFail2ban).
		Set("max_upload_size", "100m").
		Set("nginx_worker_processes", "auto").
		Set("nginx_worker_connections", 1024)

	webservers := &Group{
		Hosts: buildWebHosts(publicIPs, privateIPs, instanceIDs),
		Vars: NewDict().
			Set("server_type", "web").
			Set("nginx_client_max_body_size", "100m").
			Set("node_env", "production").
			Set("log_level", "info"),
	}

	databases := &Group{
		Hosts: NewDict().Set("postgres-main", NewDict().
			Set("ansible_host", databaseAddress(rdsEndpoint)).
			Set("db_engine", "postgres").
			Set("db_port", cfg.DatabasePort).
			Set("is_managed", true)),
		Vars: NewDict().
			Set("database_type", "postgresql").
			Set("backup_enabled", true),
	}

	loadbalancers := &Group{
		Hosts: NewDict().Set("alb-main", NewDict().
			Set("lb_dns_name", lbDNS).
			Set("lb_type", "application").
			Set("is_managed", true)),
		Vars: NewDict().
			Set("lb_health_check_path", "/health").
			Set("lb_health_check_interval", 30),
	}

	children := NewDict().
		Set("webservers", webservers).
		Set("databases", databases).
		Set("loadbalancers", loadbalancers)

	logger.Infof("Generated inventory with %d web servers", len(publicIPs))

	return &Inventory{All: &AllGroup{Vars: globalVars, Children: children}}
}

// buildWebHosts creates one host per public IP, named web-1..web-n in
// provisioning order. The first host is the primary and carries the
// scheduled-job and backup responsibilities.
func buildWebHosts(publicIPs, privateIPs, instanceIDs []string) *Dict {
	hosts := NewDict()
	for i, publicIP := range publicIPs {
		primary := i == 0
		role := "secondary"
		if primary {
			role = "primary"
		}
		hosts.Set(fmt.Sprintf("web-%d", i+1), NewDict().
			Set("ansible_host", publicIP).
			Set("private_ip", outputs.At(privateIPs, i)).
			Set("instance_id", outputs.At(instanceIDs, i)).
			Set("server_role", role).
			Set("server_index", i+1).
			Set("enable_cron_jobs", primary).
			Set("enable_database_backups", primary).
			Set("is_primary", primary))
	}
	return hosts
}

// databaseAddress strips the port suffix from an RDS endpoint. An
// empty endpoint falls back to localhost.
func databaseAddress(endpoint string) string {
	if endpoint == "" {
		return "localhost"
	}
	host, _, _ := strings.Cut(endpoint, ":")
	return host
}
