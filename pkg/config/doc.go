/*
Package config loads batch edit files for lineinfile.

A batch file lists edits; each edit names a file and the same line, regex,
state and create settings the command line accepts. The format is chosen by
file extension:

	edits.yaml / edits.yml   YAML
	edits.hcl                HCL
	edits.json               JSON

YAML:

	edits:
	  - name: resolver
	    path: /etc/resolv.conf
	    regex: ^nameserver
	    line: nameserver 10.0.0.2
	  - path: conf.d/*.conf
	    state: absent
	    line: debug = true

HCL:

	edit "resolver" {
	  path  = "/etc/resolv.conf"
	  regex = "^nameserver"
	  line  = "nameserver 10.0.0.2"
	}

	edit "hosts" {
	  path   = "${config_dir}/hosts"
	  line   = "10.0.0.1 db"
	  create = true
	}

Relative paths are resolved against the directory holding the batch file.
A path containing glob characters (*, ?, [, {) is expanded with doublestar,
and a double star path element matches any number of directories.
*/
package config
