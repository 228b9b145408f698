package triage

// AcceptThreshold is the final business bar for unattended acceptance.
// A document can clear both classification passes and still sit below it.
const AcceptThreshold = 0.6

// Route resolves the terminal decision for one request from the record
// snapshot and the error raised during the pipeline, if any. It is a pure,
// total function over its inputs: identical inputs always yield the
// identical decision.
//
// When an error is present the kind checks run in strict priority order and
// the first match wins; the record state is not consulted. When no error is
// present the decision derives purely from record state. Asking for a route
// with no error and no classified type is an internal contract violation
// and returns a routing decision error rather than a decision.
func Route(record Record, err error) (RouteDecision, error) {
	if err != nil {
		return routeError(err)
	}

	if !record.Classified() {
		return "", NewError(KindRoutingDecision, "record has no document type and no error was raised")
	}

	// The unknown catalog entry forbids auto-routing outright, so the
	// confidence bar never applies to it.
	if record.DocumentType == TypeUnknown {
		return RouteHumanReview, nil
	}

	if record.Confidence < AcceptThreshold {
		return RouteHumanReview, nil
	}

	return RouteAccept, nil
}

func routeError(err error) (RouteDecision, error) {
	kind, ok := KindOf(err)
	if !ok {
		return "", NewError(KindRoutingDecision, "cannot route a non-domain error")
	}

	switch {
	case kind.IsState():
		// Caller or programmer defect; never retried automatically.
		return RouteFailPipeline, nil
	case kind == KindFileIngestion || kind.IsExtraction():
		return RouteRetryExtraction, nil
	case kind.IsModel():
		return RouteRetryClassification, nil
	case kind == KindLowConfidence:
		return RouteHumanReview, nil
	case kind.IsValidation():
		return RouteReject, nil
	case kind == KindUnsupportedFileType:
		// Re-submitting the same unsupported file cannot succeed.
		return RouteReject, nil
	case kind == KindClassification:
		return RouteRetryClassification, nil
	default:
		return RouteFailPipeline, nil
	}
}
