package content

import "sort"

// CredentialFields groups the binding keys for the nested credentials object.
type CredentialFields struct {
	Type      string
	AccessKey string
	SecretKey string
}

// Fields maps the symbolic form-field identifiers to the binding keys used
// for input binding and validation-error association.
type Fields struct {
	Credentials  CredentialFields
	Regions      string
	S3BucketName string
	EC2SubnetID  string
}

var fieldNames = Fields{
	Credentials: CredentialFields{
		Type:      "credentials.type",
		AccessKey: "credentials.access_key",
		SecretKey: "credentials.secret_key",
	},
	Regions:      "regions",
	S3BucketName: "s3_bucket_name",
	EC2SubnetID:  "ec2_subnet_id",
}

// FieldNames returns the field-name registry. The result is a value copy;
// mutating it has no effect on the registry.
func FieldNames() Fields {
	return fieldNames
}

// BindingKeys returns the flat, sorted list of binding keys declared by the
// registry.
func BindingKeys() []string {
	keys := []string{
		fieldNames.Credentials.Type,
		fieldNames.Credentials.AccessKey,
		fieldNames.Credentials.SecretKey,
		fieldNames.Regions,
		fieldNames.S3BucketName,
		fieldNames.EC2SubnetID,
	}
	sort.Strings(keys)
	return keys
}
