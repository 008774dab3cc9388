package manifest

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Cluster-scoped kinds that never receive a namespace.
const (
	KindNamespace                      = "Namespace"
	KindClusterRole                    = "ClusterRole"
	KindClusterRoleBinding             = "ClusterRoleBinding"
	KindValidatingWebhookConfiguration = "ValidatingWebhookConfiguration"
)

// DefaultProtectedKinds lists the kinds exempt from namespace injection.
var DefaultProtectedKinds = []string{
	KindNamespace,
	KindClusterRole,
	KindClusterRoleBinding,
	KindValidatingWebhookConfiguration,
}

// Injector sets metadata.namespace and drops spec.replicas.
type Injector struct {
	// Namespace is written to documents that have none.
	Namespace string

	// ProtectedKinds never get a namespace injected.
	ProtectedKinds sets.Set[string]
}

// Result describes what Apply changed.
type Result struct {
	Kind             string
	Injected         bool
	StrippedReplicas bool
}

// NewInjector creates an Injector for namespace. extraProtected is added to
// DefaultProtectedKinds.
func NewInjector(namespace string, extraProtected ...string) (*Injector, error) {
	if namespace == "" {
		return nil, ErrMissingNamespace
	}

	protected := sets.New(DefaultProtectedKinds...)
	protected.Insert(extraProtected...)

	return &Injector{
		Namespace:      namespace,
		ProtectedKinds: protected,
	}, nil
}

// Apply mutates doc in place.
//
// metadata.namespace is added when metadata is a mapping without a
// namespace key and the kind is not protected; an existing namespace,
// even a null one, is kept. spec.replicas is removed for every kind so an
// externally managed replica count is never reset.
func (i *Injector) Apply(doc *Document) Result {
	result := Result{Kind: doc.Kind()}

	if !i.ProtectedKinds.Has(result.Kind) &&
		doc.Lookup("metadata").IsMapping() &&
		doc.Lookup("metadata", "namespace").Presence == Absent {
		result.Injected = doc.Set([]string{"metadata"}, "namespace", i.Namespace)
	}

	if doc.Lookup("spec").IsMapping() {
		result.StrippedReplicas = doc.Delete("spec", "replicas")
	}

	return result
}
