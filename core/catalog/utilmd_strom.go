package catalog

import "qualitymap/core/quality"

// UTILMDStrom returns the quality map of the UTILMD AHB Strom 2.0
// (informatorische Lesefassung, valid from 2025-04-04) in document order.
func UTILMDStrom() []quality.Entry {
	return []quality.Entry{
		{Code: "Z50_Termindaten_der_Marktlokation", Quality: quality.Unspecified, Description: "Termindaten der Marktlokation"},
		{Code: "Z50_Im_System_vorhandene_Korrespondenzanschrift_des_Kunden_des_LF", Quality: quality.ImSystemVorhanden, Description: "Korrespondenzanschrift des Kunden des LF"},
		{Code: "Z51_Termindaten_der_Marktlokation", Quality: quality.Erwartet, Description: "Termindaten der Marktlokation"},
		{Code: "Z51_Daten_der_Netzlokation", Quality: quality.Unspecified, Description: "Daten der Netzlokation"},
		{Code: "Z51_Erwarteter_Kunde_des_Netzbetreibers", Quality: quality.Erwartet, Description: "Kunde des Netzbetreibers"},
		{Code: "Z52_Termindaten_der_Marktlokation", Quality: quality.ImSystemVorhanden, Description: "Termindaten der Marktlokation"},
		{Code: "Z52_Daten_der_Technischen_Ressource", Quality: quality.Unspecified, Description: "Daten der Technischen Ressource"},
		{Code: "Z52_Im_System_vorhandener_Kunde_des_Netzbetreibers", Quality: quality.ImSystemVorhanden, Description: "Kunde des Netzbetreibers"},
		{Code: "Z78", Quality: quality.Unspecified, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZD5", Quality: quality.Informativ, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZC7", Quality: quality.Erwartet, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZC8", Quality: quality.ImSystemVorhanden, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "Z58_Zuordnung_Lokation_zum_Objektcode_des_Lokationsbuendels", Quality: quality.Unspecified, Description: "Zuordnung Lokation zum Objektcode des Lokationsbündels"},
		{Code: "Z58_Im_System_vorhandener_Hausverwalter", Quality: quality.ImSystemVorhanden, Description: "Hausverwalter"},
		{Code: "ZD6", Quality: quality.Informativ, Description: "Zuordnung Lokation zum Objektcode des Lokationsbündels"},
		{Code: "ZC9", Quality: quality.Erwartet, Description: "Zuordnung Lokation zum Objektcode des Lokationsbündels"},
		{Code: "ZD0", Quality: quality.ImSystemVorhanden, Description: "Zuordnung Lokation zum Objektcode des Lokationsbündels"},
		{Code: "ZD7", Quality: quality.Informativ, Description: "Daten der Netzlokation"},
		{Code: "ZA9", Quality: quality.Erwartet, Description: "Daten der Netzlokation"},
		{Code: "ZB0", Quality: quality.ImSystemVorhanden, Description: "Daten der Netzlokation"},
		{Code: "Z71", Quality: quality.Unspecified, Description: "Abrechnungsdaten der Netzlokation"},
		{Code: "ZD8", Quality: quality.Informativ, Description: "Abrechnungsdaten der Netzlokation"},
		{Code: "ZH1", Quality: quality.Erwartet, Description: "Abrechnungsdaten der Netzlokation"},
		{Code: "ZH2", Quality: quality.ImSystemVorhanden, Description: "Abrechnungsdaten der Netzlokation"},
		{Code: "Z57_OBIS_Daten_der_Netzlokation", Quality: quality.Unspecified, Description: "OBIS-Daten der Netzlokation"},
		{Code: "Z57_Erwarteter_Hausverwalter", Quality: quality.Erwartet, Description: "Hausverwalter"},
		{Code: "ZD9", Quality: quality.Informativ, Description: "OBIS-Daten der Netzlokation"},
		{Code: "ZA7", Quality: quality.Erwartet, Description: "OBIS-Daten der Netzlokation"},
		{Code: "ZA8", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Netzlokation"},
		{Code: "Z60_Produkt_Daten_der_Netzlokation", Quality: quality.Unspecified, Description: "Produkt-Daten der Netzlokation"},
		{Code: "Z60_Im_System_vorhandene_Marktlokationsanschrift", Quality: quality.ImSystemVorhanden, Description: "Marktlokationsanschrift"},
		{Code: "ZE0", Quality: quality.Informativ, Description: "Produkt-Daten der Netzlokation"},
		{Code: "ZG8", Quality: quality.Erwartet, Description: "Produkt-Daten der NeLo"},
		{Code: "ZG9", Quality: quality.ImSystemVorhanden, Description: "Produkt-Daten der NeLo"},
		{Code: "Z01", Quality: quality.Unspecified, Description: "Daten der Marktlokation"},
		{Code: "Z98", Quality: quality.Informativ, Description: "Daten der Marktlokation"},
		{Code: "Z80", Quality: quality.Erwartet, Description: "Daten der Marktlokation"},
		{Code: "Z81", Quality: quality.ImSystemVorhanden, Description: "Daten der Marktlokation"},
		{Code: "Z29", Quality: quality.ImSystemVorhanden, Description: "Daten der Marktlokation der beteiligten Marktrolle"},
		{Code: "Z45_Netznutzungsabrechnungsdaten_der_Marktlokation", Quality: quality.Unspecified, Description: "Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z45_Erwarteter_Name_und_Adresse_fuer_die_Ablesekarte", Quality: quality.Erwartet, Description: "Name und Adresse für die Ablesekarte"},
		{Code: "Z84", Quality: quality.Unspecified, Description: "Differenz-Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "ZE1", Quality: quality.Informativ, Description: "Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z82", Quality: quality.Erwartet, Description: "Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z96", Quality: quality.Erwartet, Description: "Differenz-Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z83", Quality: quality.ImSystemVorhanden, Description: "Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z97", Quality: quality.ImSystemVorhanden, Description: "Differenz-Netznutzungsabrechnungsdaten der Marktlokation"},
		{Code: "Z76", Quality: quality.Unspecified, Description: "Messstellenbetriebsabrechnungsdaten der Marktlokation"},
		{Code: "ZC5", Quality: quality.Erwartet, Description: "Messstellenbetriebsabrechnungsdaten der Marktlokation"},
		{Code: "ZC6", Quality: quality.ImSystemVorhanden, Description: "Messstellenbetriebsabrechnungsdaten der Marktlokation"},
		{Code: "ZE2", Quality: quality.Informativ, Description: "Erforderliches Messprodukt der Marktlokation"},
		{Code: "Z02", Quality: quality.Unspecified, Description: "OBIS-Daten der Marktlokation"},
		{Code: "ZE3", Quality: quality.Informativ, Description: "OBIS-Daten der Marktlokation"},
		{Code: "ZA1", Quality: quality.Erwartet, Description: "OBIS-Daten der Marktlokation"},
		{Code: "ZA2", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Marktlokation"},
		{Code: "Z59_Produkt_Daten_der_Marktlokation", Quality: quality.Unspecified, Description: "Produkt-Daten der Marktlokation"},
		{Code: "Z59_Erwartete_Marktlokationsanschrift", Quality: quality.Erwartet, Description: "Marktlokationsanschrift"},
		{Code: "ZE4", Quality: quality.Informativ, Description: "Produkt-Daten der Marktlokation"},
		{Code: "ZB5", Quality: quality.Erwartet, Description: "Produkt-Daten der Marktlokation"},
		{Code: "ZB6", Quality: quality.ImSystemVorhanden, Description: "Produkt-Daten der Marktlokation"},
		{Code: "Z44_Verbrauchsart_und_Nutzung_der_OBIS_Kennzahl_an_der_Marktlokation", Quality: quality.Unspecified, Description: "Verbrauchsart und Nutzung der OBIS-Kennzahl an der Marktlokation"},
		{Code: "Z44_Im_System_vorhandene_Messlokationsadresse", Quality: quality.ImSystemVorhanden, Description: "Messlokationsadresse"},
		{Code: "ZE5", Quality: quality.Informativ, Description: "Verbrauchsart und Nutzung der OBIS-Kennzahl an der Marktlokation"},
		{Code: "ZD1", Quality: quality.Erwartet, Description: "Verbrauchsart und Nutzung der OBIS-Kennzahl der Marktlokation"},
		{Code: "ZD2", Quality: quality.ImSystemVorhanden, Description: "Verbrauchsart und Nutzung der OBIS-Kennzahl der Marktlokation"},
		{Code: "Z30", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Marktlokation der beteiligten Marktrolle"},
		{Code: "Z40_Produkt_Daten_der_Marktlokation_des_NB", Quality: quality.Unspecified, Description: "Produkt-Daten der Marktlokation des NB"},
		{Code: "Z40_Im_System_vorhandener_Kunde_des_MSB", Quality: quality.ImSystemVorhanden, Description: "Kunde des MSB"},
		{Code: "ZE6", Quality: quality.Informativ, Description: "Produkt-Daten der Marktlokation des NB"},
		{Code: "ZD3", Quality: quality.Erwartet, Description: "Produkt-Daten der Marktlokation des NB"},
		{Code: "ZD4", Quality: quality.ImSystemVorhanden, Description: "Produkt-Daten der Marktlokation des NB"},
		{Code: "Z15", Quality: quality.Unspecified, Description: "Daten der Tranche"},
		{Code: "ZE7", Quality: quality.Informativ, Description: "Daten der Tranche"},
		{Code: "Z94", Quality: quality.Erwartet, Description: "Daten der Tranche"},
		{Code: "Z95", Quality: quality.ImSystemVorhanden, Description: "Daten der Tranche"},
		{Code: "Z31", Quality: quality.ImSystemVorhanden, Description: "Daten der Tranche der beteiligten Marktrolle"},
		{Code: "ZE8", Quality: quality.Informativ, Description: "Erforderliches Produkt der Tranche"},
		{Code: "Z17", Quality: quality.Unspecified, Description: "OBIS-Daten der Tranche"},
		{Code: "ZE9", Quality: quality.Informativ, Description: "OBIS-Daten der Tranche"},
		{Code: "Z99", Quality: quality.Erwartet, Description: "OBIS-Daten der Tranche"},
		{Code: "ZA0", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Tranche"},
		{Code: "Z32", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Tranche der beteiligten Marktrolle"},
		{Code: "ZF0", Quality: quality.Informativ, Description: "Daten der Technischen Ressource"},
		{Code: "ZG4", Quality: quality.Erwartet, Description: "Daten der Technischen Ressource"},
		{Code: "ZG5", Quality: quality.ImSystemVorhanden, Description: "Daten der Technischen Ressource"},
		{Code: "Z62", Quality: quality.Unspecified, Description: "Daten der Steuerbaren Ressource"},
		{Code: "ZF1", Quality: quality.Informativ, Description: "Daten der Steuerbaren Ressource"},
		{Code: "ZB1", Quality: quality.Erwartet, Description: "Daten der Steuerbaren Ressource"},
		{Code: "ZB2", Quality: quality.ImSystemVorhanden, Description: "Daten der Steuerbaren Ressource"},
		{Code: "Z61", Quality: quality.Unspecified, Description: "Produkt-Daten der Steuerbaren Ressource"},
		{Code: "ZF2", Quality: quality.Informativ, Description: "Produkt-Daten der Steuerbaren Ressource"},
		{Code: "ZB3", Quality: quality.Erwartet, Description: "Produkt-Daten der Steuerbaren Ressource"},
		{Code: "ZB4", Quality: quality.ImSystemVorhanden, Description: "Produkt-Daten der Steuerbaren Ressource"},
		{Code: "Z18", Quality: quality.Unspecified, Description: "Daten der Messlokation"},
		{Code: "ZF3", Quality: quality.Informativ, Description: "Daten der Messlokation"},
		{Code: "ZG6", Quality: quality.Erwartet, Description: "Daten der Messlokation"},
		{Code: "ZG7", Quality: quality.ImSystemVorhanden, Description: "Daten der Messlokation"},
		{Code: "ZF4", Quality: quality.Informativ, Description: "Erforderliches Produkt der Messlokation"},
		{Code: "Z03_Zaehleinrichtungsdaten", Quality: quality.Unspecified, Description: "Zähleinrichtungsdaten"},
		{Code: "Z03_Messlokationsadresse", Quality: quality.Unspecified, Description: "Messlokationsadresse"},
		{Code: "ZF5", Quality: quality.Informativ, Description: "Zähleinrichtungsdaten"},
		{Code: "ZA3", Quality: quality.Erwartet, Description: "Zähleinrichtungsdaten"},
		{Code: "ZA4", Quality: quality.ImSystemVorhanden, Description: "Zähleinrichtungsdaten"},
		{Code: "Z20", Quality: quality.Unspecified, Description: "OBIS-Daten der Zähleinrichtung"},
		{Code: "ZF6", Quality: quality.Informativ, Description: "OBIS-Daten der Zähleinrichtung"},
		{Code: "ZA5", Quality: quality.Erwartet, Description: "OBIS-Daten der Zähleinrichtung"},
		{Code: "ZA6", Quality: quality.ImSystemVorhanden, Description: "OBIS-Daten der Zähleinrichtung"},
		{Code: "Z04_Wandlerdaten", Quality: quality.Unspecified, Description: "Wandlerdaten"},
		{Code: "Z04_Korrespondenzanschrift_des_Kunden_des_LF", Quality: quality.Unspecified, Description: "Korrespondenzanschrift des Kunden des LF"},
		{Code: "ZF7", Quality: quality.Informativ, Description: "Wandlerdaten"},
		{Code: "ZB9", Quality: quality.Erwartet, Description: "Wandlerdaten"},
		{Code: "ZC0", Quality: quality.ImSystemVorhanden, Description: "Wandlerdaten"},
		{Code: "Z05_Kommunikationseinrichtungsdaten", Quality: quality.Unspecified, Description: "Kommunikationseinrichtungsdaten"},
		{Code: "Z05_Name_und_Adresse_fuer_die_Ablesekarte", Quality: quality.Unspecified, Description: "Name und Adresse für die Ablesekarte"},
		{Code: "ZF8", Quality: quality.Informativ, Description: "Kommunikationseinrichtungsdaten"},
		{Code: "ZB7", Quality: quality.Erwartet, Description: "Kommunikationseinrichtungsdaten"},
		{Code: "ZB8", Quality: quality.ImSystemVorhanden, Description: "Kommunikationseinrichtungsdaten"},
		{Code: "Z06", Quality: quality.Unspecified, Description: "Daten der technischen Steuereinrichtung"},
		{Code: "ZF9", Quality: quality.Informativ, Description: "Daten der technischen Steuereinrichtung"},
		{Code: "ZC1", Quality: quality.Erwartet, Description: "Daten der technischen Steuereinrichtung"},
		{Code: "ZC2", Quality: quality.ImSystemVorhanden, Description: "Daten der technischen Steuereinrichtung"},
		{Code: "Z13", Quality: quality.Unspecified, Description: "Smartmeter-Gateway"},
		{Code: "ZG0", Quality: quality.Informativ, Description: "Smartmeter-Gateway"},
		{Code: "ZC3", Quality: quality.Erwartet, Description: "Smartmeter-Gateway"},
		{Code: "ZC4", Quality: quality.ImSystemVorhanden, Description: "Smartmeter-Gateway"},
		{Code: "Z14", Quality: quality.Unspecified, Description: "Steuerbox"},
		{Code: "ZH3", Quality: quality.Erwartet, Description: "Daten der Steuerbox"},
		{Code: "ZH4", Quality: quality.ImSystemVorhanden, Description: "Daten der Steuerbox"},
		{Code: "Z21", Quality: quality.Unspecified, Description: "Profildaten"},
		{Code: "ZG1", Quality: quality.Informativ, Description: "Profildaten"},
		{Code: "Z85", Quality: quality.Erwartet, Description: "Profildaten"},
		{Code: "Z86", Quality: quality.ImSystemVorhanden, Description: "Profildaten"},
		{Code: "Z33", Quality: quality.ImSystemVorhanden, Description: "Profildaten der beteiligten Marktrolle"},
		{Code: "Z08_Profilschardaten", Quality: quality.Unspecified, Description: "Profilschardaten"},
		{Code: "Z08_Korrespondenzanschrift_des_Kunden_des_MSB", Quality: quality.Unspecified, Description: "Korrespondenzanschrift des Kunden des MSB"},
		{Code: "ZG2", Quality: quality.Informativ, Description: "Profilschardaten"},
		{Code: "Z87", Quality: quality.Erwartet, Description: "Profilschardaten"},
		{Code: "Z88", Quality: quality.ImSystemVorhanden, Description: "Profilschardaten"},
		{Code: "Z38", Quality: quality.Unspecified, Description: "Referenzprofildaten"},
		{Code: "ZG3", Quality: quality.Informativ, Description: "Referenzprofildaten"},
		{Code: "Z89", Quality: quality.Erwartet, Description: "Referenzprofildaten"},
		{Code: "Z90", Quality: quality.ImSystemVorhanden, Description: "Referenzprofildaten"},
		{Code: "Z22", Quality: quality.Unspecified, Description: "Daten der Summenzeitreihe"},
		{Code: "Z23", Quality: quality.Unspecified, Description: "Produkt-Daten der Summenzeitreihe"},
		{Code: "Z24", Quality: quality.Unspecified, Description: "Daten der Überführungszeitreihe"},
		{Code: "Z25_Produkt_Daten_der_Ueberfuehrungszeitreihe", Quality: quality.Unspecified, Description: "Produkt-Daten der Überführungszeitreihe"},
		{Code: "Z25_Kunde_des_NB", Quality: quality.Unspecified, Description: "Kunde des NB"},
		{Code: "Z47_Datenstand_des_UENB", Quality: quality.ImSystemVorhanden, Description: "Datenstand des ÜNB"},
		{Code: "Z47_Erwarteter_Kunde_des_LF", Quality: quality.Erwartet, Description: "Kunde des LF"},
		{Code: "Z72", Quality: quality.ImSystemVorhanden, Description: "Datenstand des NB"},
		{Code: "Z48_Abgerechnete_Daten_der_Bilanzkreissummenzeitreihe_des_UENB", Quality: quality.Unspecified, Description: "Abgerechnete Daten der Bilanzkreissummenzeitreihe des ÜNB"},
		{Code: "Z48_Im_System_vorhandener_Kunde_des_LF", Quality: quality.ImSystemVorhanden, Description: "Kunde des LF"},
		{Code: "Z49_Abgerechnete_Daten_der_Bilanzierungsgebietssummenzeitreihe_des_UENB", Quality: quality.Unspecified, Description: "Abgerechnete Daten der Bilanzierungsgebietssummenzeitreihe des ÜNB"},
		{Code: "Z49_Erwartete_Korrespondenzanschrift_des_Kunden_des_LF", Quality: quality.Erwartet, Description: "Korrespondenzanschrift des Kunden des LF"},
		{Code: "Z75", Quality: quality.Unspecified, Description: "Daten des Kunden des Lieferanten"},
		{Code: "Z92", Quality: quality.Erwartet, Description: "Daten des Kunden des Lieferanten"},
		{Code: "Z93", Quality: quality.ImSystemVorhanden, Description: "Daten des Kunden des Lieferanten"},
		{Code: "Z09", Quality: quality.Unspecified, Description: "Kunde des LF"},
		{Code: "Z65", Quality: quality.Informativ, Description: "Kunden des LF"},
		{Code: "Z66", Quality: quality.Informativ, Description: "Korrespondenzanschrift des Kunden des LF"},
		{Code: "Z07", Quality: quality.Unspecified, Description: "Kunde des MSB"},
		{Code: "Z39", Quality: quality.Erwartet, Description: "Kunde des MSB"},
		{Code: "Z41", Quality: quality.Erwartet, Description: "Korrespondenzanschrift des Kunden des MSB"},
		{Code: "Z42", Quality: quality.ImSystemVorhanden, Description: "Korrespondenzanschrift des Kunden des MSB"},
		{Code: "Z67", Quality: quality.Informativ, Description: "Kundenname des NB"},
		{Code: "Z26", Quality: quality.Unspecified, Description: "Korrespondenzanschrift des Kunden des NB"},
		{Code: "Z68", Quality: quality.Informativ, Description: "Korrespondenzanschrift des Kunde des NB"},
		{Code: "Z53", Quality: quality.Erwartet, Description: "Korrespondenzanschrift des Kunden des Netzbetreibers"},
		{Code: "Z54", Quality: quality.ImSystemVorhanden, Description: "Korrespondenzanschrift des Kunden des Netzbetreibers"},
		{Code: "EO", Quality: quality.Unspecified, Description: "Anschlussnehmer"},
		{Code: "Z69", Quality: quality.Informativ, Description: "Daten des Anschlussnehmers"},
		{Code: "Z55", Quality: quality.Erwartet, Description: "Anschlussnehmer"},
		{Code: "Z56", Quality: quality.ImSystemVorhanden, Description: "Anschlussnehmer"},
		{Code: "VY", Quality: quality.Informativ, Description: "andere zugehörige Partei"},
		{Code: "DDO", Quality: quality.Unspecified, Description: "Hausverwalter"},
		{Code: "Z70", Quality: quality.Informativ, Description: "Daten des Hausverwalters"},
		{Code: "DP", Quality: quality.Unspecified, Description: "Lieferanschrift"},
		{Code: "Z63", Quality: quality.Informativ, Description: "Marktlokationsanschrift"},
		{Code: "Z64", Quality: quality.Informativ, Description: "Messlokationsadresse"},
		{Code: "Z43", Quality: quality.Erwartet, Description: "Messlokationsadresse"},
		{Code: "Z46", Quality: quality.ImSystemVorhanden, Description: "Name und Adresse für die Ablesekarte"},
	}
}
