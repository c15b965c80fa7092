// Package swagger generates one OpenAPI document per published API version.
//
// A VersionDocumentBuilder turns the descriptors of an apiversion.Provider
// into DocumentMetadata and registers one document per version group. The
// Generator then renders each group from the endpoint catalog and runs the
// configured OperationFilter values, such as ParameterMetadataEnricher, over
// every operation before validating the result.
package swagger
