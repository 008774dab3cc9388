// Package manifest rewrites streams of Kubernetes YAML manifests.
//
// A stream is processed in two stages. Chunks splits the input on "---"
// separators, then each chunk is parsed into a Document, changed by an
// Injector and encoded again:
//
//	injector, err := manifest.NewInjector("ingress-nginx")
//	if err != nil {
//		return err
//	}
//	stats, err := manifest.NewProcessor(injector, logger).Process(ctx, os.Stdin, os.Stdout)
//
// # Injection Rules
//
// metadata.namespace is added to every document whose metadata has no
// namespace key, unless its kind is cluster-scoped:
//
//	kind: Deployment          kind: Deployment
//	metadata:           =>    metadata:
//	  name: web                 name: web
//	                            namespace: ingress-nginx
//
// spec.replicas is removed from every document regardless of kind.
//
// # Documents
//
// Document keeps the yaml.v3 node tree, so key order, comments and quoting
// are preserved. Lookup reports optional fields as Absent, Null or Present
// instead of probing loosely typed maps.
package manifest
