// Package schema defines the declarative description of a validatable record:
// per-field configs with typed coercion, ordered rule parameters and localized
// message templates, plus cross-field comparison rules.
//
// Schemas can be built directly in Go or parsed from JSON/YAML documents of
// the shape:
//
//	{
//	  "fields": {
//	    "username": {
//	      "type": "string",
//	      "required": true,
//	      "minLength": 3,
//	      "messages": {
//	        "required":  {"en": "username is required", "ja": "ユーザー名は必須です"},
//	        "minLength": {"default": "at least ${minLength} characters"}
//	      }
//	    }
//	  },
//	  "crossFieldValidations": [
//	    {
//	      "rule": "startDate <= endDate",
//	      "fields": ["startDate", "endDate"],
//	      "target": "endDate",
//	      "message": {"endDate": {"en": "end date must not precede start date"}}
//	    }
//	  ]
//	}
//
// Both parsers preserve the declaration order of fields and of rule-parameter
// keys; validators evaluate rules in exactly that order. Config keys that do
// not name a registered rule are carried along and silently skipped during
// validation, so host applications may register custom rules after parsing.
package schema
