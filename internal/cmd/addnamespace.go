package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/cameronsjo/pipetools/internal/manifest"
	"github.com/cameronsjo/pipetools/internal/ui"
)

type addNamespaceOptions struct {
	commonOptions
	protectedKinds []string
}

// NewAddNamespaceCmd creates the add-namespace command.
func NewAddNamespaceCmd() *cobra.Command {
	o := &addNamespaceOptions{}

	cmd := &cobra.Command{
		Use:   "add-namespace NAMESPACE",
		Short: "Inject a namespace into a stream of Kubernetes manifests",
		Long: `Inject a namespace into a stream of YAML manifests.

Documents are read from stdin and written to stdout, each preceded by "---".
For every document:

  - metadata.namespace is set to NAMESPACE when metadata exists, has no
    namespace key, and the kind is not cluster-scoped (Namespace,
    ClusterRole, ClusterRoleBinding, ValidatingWebhookConfiguration, plus
    any --protected-kind)
  - spec.replicas is removed, so an externally managed replica count is
    never reset
  - empty documents are dropped

Output uses 2-space indentation with sequences indented under their key.
If any document fails to parse nothing is written and the exit code is 1.

Examples:
  # Render a chart into a namespace
  helm template ingress ./chart | add-namespace ingress-nginx > deploy.yaml

  # Treat extra kinds as cluster-scoped
  kustomize build . | add-namespace prod --protected-kind StorageClass`,
		Args: namespaceArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddNamespace(cmd, o, args[0])
		},
	}

	bindCommonFlags(cmd, &o.commonOptions)
	cmd.Flags().StringSliceVar(&o.protectedKinds, "protected-kind", nil, "Additional kind that never gets a namespace (repeatable)")
	_ = cmd.RegisterFlagCompletionFunc("protected-kind", completeProtectedKinds)

	return newRootCommand(cmd)
}

// namespaceArg requires exactly one non-empty namespace argument.
func namespaceArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 || args[0] == "":
		return manifest.ErrMissingNamespace
	case len(args) > 1:
		return fmt.Errorf("accepts 1 namespace argument, received %d", len(args))
	}
	return nil
}

func runAddNamespace(cmd *cobra.Command, o *addNamespaceOptions, namespace string) error {
	logger, err := newLogger(cmd, o.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if problems := validation.IsDNS1123Label(namespace); len(problems) > 0 {
		ui.Warning("Namespace %q is not a valid DNS-1123 label: %s", namespace, strings.Join(problems, "; "))
	}

	injector, err := manifest.NewInjector(namespace, o.protectedKinds...)
	if err != nil {
		return err
	}

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	stats, err := manifest.NewProcessor(injector, logger).Process(cmd.Context(), bytes.NewReader(input), &buf)
	if err != nil {
		return err
	}

	logger.Info("processed manifests",
		zap.String("namespace", namespace),
		zap.Int("documents", stats.Documents),
		zap.Int("skipped", stats.Skipped),
		zap.Int("injected", stats.Injected),
		zap.Int("strippedReplicas", stats.Stripped),
	)

	return writeOutput(cmd, o.output, buf.Bytes())
}
