package constants

import "strconv"

// SectionID identifies one GPP section as registered with the IAB. The
// header of every GPP string lists the ids of the sections it carries.
type SectionID int

const (
	SectionTcfEuV1         SectionID = 1
	SectionTcfEuV2         SectionID = 2
	SectionGppHeader       SectionID = 3
	SectionSignalIntegrity SectionID = 4
	SectionTcfCaV1         SectionID = 5
	SectionUspV1           SectionID = 6
	SectionUsNat           SectionID = 7
	SectionUsCa            SectionID = 8
	SectionUsVa            SectionID = 9
	SectionUsCo            SectionID = 10
	SectionUsUt            SectionID = 11
	SectionUsCt            SectionID = 12
	SectionUsFl            SectionID = 13
	SectionUsMt            SectionID = 14
	SectionUsOr            SectionID = 15
	SectionUsTx            SectionID = 16
	SectionUsDe            SectionID = 17
	SectionUsIa            SectionID = 18
	SectionUsNe            SectionID = 19
	SectionUsNh            SectionID = 20
	SectionUsNj            SectionID = 21
	SectionUsTn            SectionID = 22
)

var sectionNames = map[SectionID]string{
	SectionTcfEuV1:         "tcfeuv1",
	SectionTcfEuV2:         "tcfeuv2",
	SectionGppHeader:       "gppheader",
	SectionSignalIntegrity: "signalintegrity",
	SectionTcfCaV1:         "tcfcav1",
	SectionUspV1:           "uspv1",
	SectionUsNat:           "usnat",
	SectionUsCa:            "usca",
	SectionUsVa:            "usva",
	SectionUsCo:            "usco",
	SectionUsUt:            "usut",
	SectionUsCt:            "usct",
	SectionUsFl:            "usfl",
	SectionUsMt:            "usmt",
	SectionUsOr:            "usor",
	SectionUsTx:            "ustx",
	SectionUsDe:            "usde",
	SectionUsIa:            "usia",
	SectionUsNe:            "usne",
	SectionUsNh:            "usnh",
	SectionUsNj:            "usnj",
	SectionUsTn:            "ustn",
}

func (id SectionID) String() string {
	if name, ok := sectionNames[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}
