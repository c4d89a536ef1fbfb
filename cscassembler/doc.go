// Package cscassembler is the CSC Assembler (C6): it takes one predicate's
// ROOT, OPS, ROLES, and META and produces a validated csc.CSC, dropping
// any role incompatible with ROOT as a recovery rather than failing the
// whole encode. AssembleAll orders the CSCs for a multi-predicate sentence
// by predicate occurrence.
package cscassembler
