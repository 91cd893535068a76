/*
The package telegram implements decoding of P1 telegrams as emitted by smart
energy meters following the DSMR standard. This implementation is based on:
  [P1]   Dutch Smart Meter Requirements v5.0.2, P1 Companion Standard
  [OBIS] IEC 62056-6-1 Object Identification System

A telegram is a checksummed text frame of OBIS-tagged value lines. Each line
carries one quantity in a fixed textual encoding: an optionally unit-suffixed
decimal number or a parenthesized string. The package decodes complete frames
into a Telegram with one typed, presence-flagged field per known OBIS code,
and exposes a visitor to iterate over all present fields generically.

Restrictions:
The 13-character timestamps are kept verbatim and not decoded into calendar
time. Encrypted P1 variants (e.g. the Luxembourgish "smarty" meters) are not
supported.
*/
package telegram
