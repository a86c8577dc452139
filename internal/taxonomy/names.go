package taxonomy

import "strings"

// Well-known XBRL namespace URIs and schema locations.
const (
	nsXS     = "http://www.w3.org/2001/XMLSchema"
	nsXbrli  = "http://www.xbrl.org/2003/instance"
	nsLink   = "http://www.xbrl.org/2003/linkbase"
	nsXlink  = "http://www.w3.org/1999/xlink"
	nsXbrldt = "http://xbrl.org/2005/xbrldt"

	locXbrli  = "http://www.xbrl.org/2003/xbrl-instance-2003-12-31.xsd"
	locLink   = "http://www.xbrl.org/2003/xbrl-linkbase-2003-12-31.xsd"
	locXbrldt = "http://www.xbrl.org/2005/xbrldt-2005.xsd"

	roleLink             = "http://www.xbrl.org/2003/role/link"
	roleLabel            = "http://www.xbrl.org/2003/role/label"
	roleDocumentation    = "http://www.xbrl.org/2003/role/documentation"
	roleLabelLinkbaseRef = "http://www.xbrl.org/2003/role/labelLinkbaseRef"
	rolePresLinkbaseRef  = "http://www.xbrl.org/2003/role/presentationLinkbaseRef"

	arcroleConceptLabel  = "http://www.xbrl.org/2003/arcrole/concept-label"
	arcroleParentChild   = "http://www.xbrl.org/2003/arcrole/parent-child"
	arcroleAll           = "http://xbrl.org/int/dim/arcrole/all"
	arcroleHyperDim      = "http://xbrl.org/int/dim/arcrole/hypercube-dimension"
	arcroleDomainMember  = "http://xbrl.org/int/dim/arcrole/domain-member"
	arcroleLinkbase      = "http://www.w3.org/1999/xlink/properties/linkbase"

	docTypeXbrlCSV = "https://xbrl.org/2021/xbrl-csv"
)

// typedDomainID is the shared typed-domain element every dimension refers
// to.
const typedDomainID = "_v"

// xbrliType maps an LHM representation term to an XBRL item type.
func xbrliType(datatype string) string {
	switch strings.ToLower(datatype) {
	case "amount":
		return "xbrli:monetaryItemType"
	case "date":
		return "xbrli:dateItemType"
	case "time":
		return "xbrli:timeItemType"
	case "quantity", "numeric", "number", "measure", "percent", "rate":
		return "xbrli:decimalItemType"
	case "indicator":
		return "xbrli:booleanItemType"
	case "code", "identifier":
		return "xbrli:tokenItemType"
	default:
		return "xbrli:stringItemType"
	}
}

// isMonetary reports whether a representation term denotes a monetary
// attribute.
func isMonetary(datatype string) bool {
	return strings.EqualFold(datatype, "amount")
}

// occurs converts an LHM multiplicity into minOccurs/maxOccurs values.
// "n" and "*" mean unbounded.
func occurs(multiplicity string) (string, string) {
	switch multiplicity {
	case "", "1", "1..1":
		return "1", "1"
	case "0..1":
		return "0", "1"
	case "0..*", "*", "n":
		return "0", "unbounded"
	case "1..*":
		return "1", "unbounded"
	default:
		return "0", "unbounded"
	}
}
