package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// clusterScopedKinds are suggested for --protected-kind. The built-in
// protected kinds are left out since they are always skipped.
var clusterScopedKinds = []string{
	"APIService",
	"ClusterIssuer",
	"CustomResourceDefinition",
	"IngressClass",
	"MutatingWebhookConfiguration",
	"PersistentVolume",
	"PriorityClass",
	"RuntimeClass",
	"StorageClass",
}

// completeProtectedKinds completes cluster-scoped kind names.
func completeProtectedKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var kinds []string
	for _, kind := range clusterScopedKinds {
		if strings.HasPrefix(strings.ToLower(kind), strings.ToLower(toComplete)) {
			kinds = append(kinds, kind)
		}
	}
	return kinds, cobra.ShellCompDirectiveNoFileComp
}
