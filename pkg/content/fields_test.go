package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldNames_ExpectedBindingKeys(t *testing.T) {
	names := FieldNames()

	expected := map[string]string{
		"credentials type":       "credentials.type",
		"credentials access key": "credentials.access_key",
		"credentials secret key": "credentials.secret_key",
		"regions":                "regions",
		"bucket name":            "s3_bucket_name",
		"subnet id":              "ec2_subnet_id",
	}
	actual := map[string]string{
		"credentials type":       names.Credentials.Type,
		"credentials access key": names.Credentials.AccessKey,
		"credentials secret key": names.Credentials.SecretKey,
		"regions":                names.Regions,
		"bucket name":            names.S3BucketName,
		"subnet id":              names.EC2SubnetID,
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("unexpected binding keys (-want +got):\n%s", diff)
	}
	for identifier, key := range actual {
		if key == "" {
			t.Fatalf("binding key for %q is empty", identifier)
		}
	}
}

func TestBindingKeys_UniqueAndSorted(t *testing.T) {
	keys := BindingKeys()
	if len(keys) != 6 {
		t.Fatalf("expected 6 binding keys, got %d: %#v", len(keys), keys)
	}

	seen := map[string]struct{}{}
	for i, key := range keys {
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate binding key %q", key)
		}
		seen[key] = struct{}{}
		if i > 0 && keys[i-1] >= key {
			t.Fatalf("keys not sorted at %d: %q >= %q", i, keys[i-1], key)
		}
	}
}

func TestFieldNames_ReadTwiceYieldsIdenticalValues(t *testing.T) {
	first := FieldNames()
	second := FieldNames()
	if first != second {
		t.Fatalf("registry reads differ: %#v vs %#v", first, second)
	}

	// Mutating the returned copy must not leak into later reads.
	first.Regions = "mutated"
	if FieldNames().Regions != "regions" {
		t.Fatalf("registry mutated through a returned copy")
	}
}
